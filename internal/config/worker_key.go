package config

type WorkerKeyStruct struct {
	TutorLogQueue string
}

var WorkerKey = &WorkerKeyStruct{
	TutorLogQueue: "tutor_log_queue",
}
