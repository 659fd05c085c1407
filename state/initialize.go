package state

import "time"

// newLocalEnv creates LocalEnv with nothing but start time set. Config,
// report and logger are filled in by the command Before hook.
func newLocalEnv() *LocalEnv {
	return &LocalEnv{start: time.Now()}
}
