package usecase

// coalesce returns the first non-empty string — used for partial updates.
// An empty string means "not supplied", so a field cannot be cleared once
// set; callers overwrite with a new value instead.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
