package control

import "strconv"

// StartOptions mirrors the syslog-ng command line switches used when
// starting an instance outside of a service manager. Zero values are
// omitted from the command line.
type StartOptions struct {
	User        string
	Group       string
	Chroot      string
	Caps        string
	NoCaps      bool
	Pidfile     string
	EnableCore  bool
	FDLimit     int
	Verbose     bool
	Debug       bool
	Trace       bool
	YYDebug     bool
	PersistFile string
	Control     string

	// WorkerThreads is the number of worker threads; 0 leaves the
	// daemon default in place.
	WorkerThreads int
}

// Args translates the options into CLI parameters: --key=value for
// valued options, --key for boolean flags that are set. configFile is
// appended as --cfgfile when non-empty.
func (o StartOptions) Args(configFile string) []string {
	var params []string

	addParam(&params, "user", o.User)
	addParam(&params, "group", o.Group)
	addParam(&params, "chroot", o.Chroot)
	addParam(&params, "caps", o.Caps)
	addBooleanParam(&params, "no-caps", o.NoCaps)
	addParam(&params, "pidfile", o.Pidfile)
	addBooleanParam(&params, "enable-core", o.EnableCore)
	addIntParam(&params, "fd-limit", o.FDLimit)
	addBooleanParam(&params, "verbose", o.Verbose)
	addBooleanParam(&params, "debug", o.Debug)
	addBooleanParam(&params, "trace", o.Trace)
	addBooleanParam(&params, "yydebug", o.YYDebug)
	addParam(&params, "cfgfile", configFile)
	addParam(&params, "persist-file", o.PersistFile)
	addParam(&params, "control", o.Control)
	addIntParam(&params, "worker-threads", o.WorkerThreads)

	return params
}

// addParam adds key and value as a command line parameter to params.
func addParam(params *[]string, key, value string) {
	if value != "" {
		*params = append(*params, "--"+key+"="+value)
	}
}

// addIntParam adds key and a non-zero numeric value to params.
func addIntParam(params *[]string, key string, value int) {
	if value != 0 {
		*params = append(*params, "--"+key+"="+strconv.Itoa(value))
	}
}

// addBooleanParam adds key as a command line parameter to params.
func addBooleanParam(params *[]string, key string, value bool) {
	if value {
		*params = append(*params, "--"+key)
	}
}
