package postgre

import (
	"fmt"
	"strings"

	repo "ai-calendar-assistant/internal/event/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneEvent.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneEventOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds WHERE clause + args for ListEvents.
func (r *implRepository) buildListQuery(opt repo.ListEventsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if !opt.StartFrom.IsZero() {
		conditions = append(conditions, fmt.Sprintf("start_time >= $%d", idx))
		args = append(args, opt.StartFrom)
		idx++
	}
	if !opt.StartTo.IsZero() {
		conditions = append(conditions, fmt.Sprintf("start_time < $%d", idx))
		args = append(args, opt.StartTo)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
