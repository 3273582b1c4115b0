package repos

// Store is a complete record store.
type Store interface {
	UserRepo
	ProjectRepo
	TaskRepo
}
