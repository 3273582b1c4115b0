package inmemory

import "time"

func ptr[T any](v T) *T {
	return &v
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}

	return ptr(*id)
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}

	return ptr(*s)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	return ptr(t.UTC())
}
