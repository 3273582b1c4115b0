package cmd

const (
	starting = "starting"
	finished = "finished"

	failedToListen             = "failed-to-listen"
	failedToApplyMigrations    = "failed-to-apply-migrations"
	failedToRollbackMigrations = "failed-to-rollback-migrations"
	failedToVerifyMigrations   = "failed-to-verify-migrations"
	failedToLoadFixtures       = "failed-to-load-fixtures"
	failedToStop               = "failed-to-stop"
	failedToClose              = "failed-to-close"
	skippedInMemory            = "skipped-in-memory-driver"
)
