package seed

const (
	starting            = "starting"
	finished            = "finished"
	seededUser          = "seeded-user"
	reusedUser          = "reused-user"
	seededProject       = "seeded-project"
	seededTask          = "seeded-task"
	failedToSeedUser    = "failed-to-seed-user"
	failedToSeedProject = "failed-to-seed-project"
	failedToSeedTask    = "failed-to-seed-task"
)
