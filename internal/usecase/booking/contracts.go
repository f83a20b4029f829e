package booking

import "github.com/salaoflow/salon-scheduler/internal/audit"

// Auditor is satisfied by *audit.Dispatcher.
type Auditor interface {
	Dispatch(ev audit.Event)
}
