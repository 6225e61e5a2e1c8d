package api

import "time"

type Configuration struct {
	Env                    string
	AppName                string
	AppVersion             string
	Port                   string
	AppUrl                 string
	PublicApiUrl           string
	RequestLoggingLevel    string
	DefaultTimeout         time.Duration
	LoginAttemptsPerMinute int
	EnablePrometheus       bool
}

func (conf Configuration) secureCookies() bool {
	return conf.Env != "development"
}
