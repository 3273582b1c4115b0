package monitor

const (
	starting = "starting"
	finished = "finished"

	probeFailed        = "probe-failed"
	incorrectResponse  = "incorrect-response"
	failedToObserve    = "failed-to-observe-duration"
	failedToCleanUp    = "failed-to-clean-up"
	exceededMaxLatency = "exceeded-max-latency"
	failedToCallAPI    = "failed-to-call-api"
)
