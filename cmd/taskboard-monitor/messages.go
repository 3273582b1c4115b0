package main

const (
	starting = "starting"
	finished = "finished"

	loggedIn = "logged-in"

	failedToReadCertificate  = "failed-to-read-certificate"
	failedToAppendCertToPool = "failed-to-append-cert-to-pool"
	failedToCreateClient     = "failed-to-create-taskboard-client"
	failedToLogIn            = "failed-to-log-in"
	failedToCreateStatter    = "failed-to-create-statter"
)
