// Package event provides the synchronous topic dispatcher used by the
// observable collections.
//
// An Emitter maps topics to registrations. Each registration is a handler
// plus an optional receiver (binding value) and an optional once flag.
// Trigger delivers a fresh Envelope to the registrations of one topic, in
// the order they were registered, before returning.
//
// # Architecture
//
//	              ┌──────────────────────────────────┐
//	              │              Emitter              │
//	              │  On / Once / Off / Trigger / Reset│
//	              └──────────────────────────────────┘
//	                     │                     │
//	                     ▼                     ▼
//	          ┌──────────────────┐   ┌──────────────────┐
//	          │     Registry     │   │     Envelope      │
//	          │  topic → regs    │   │  topic, params,   │
//	          │  snapshot reads  │   │  caller, Stop()   │
//	          └──────────────────┘   └──────────────────┘
//
// # Basic Usage
//
//	em := event.NewEmitter()
//
//	sub, err := em.OnFunc("add remove", func(env *event.Envelope) error {
//	    fmt.Println(env.Topic, env.Params)
//	    return nil
//	})
//
//	_ = em.Trigger("add", payload, owner)
//
//	em.Off("remove", sub, nil) // drop only the "remove" registration
//
// # Delivery Rules
//
//   - Handlers run synchronously in the goroutine calling Trigger.
//   - A pass iterates a snapshot: handlers registered during the pass run
//     from the next Trigger on.
//   - Registrations removed during a pass are skipped if not yet reached.
//   - Envelope.Stop ends the pass after the current handler.
//   - Once registrations are removed before they run, so they fire exactly
//     once even when a handler re-enters Trigger.
//   - A handler error aborts the pass and is returned as *HandlerError.
//     Panics are not recovered.
//
// # Receivers
//
// Go functions cannot be compared, so the Subscription returned by On is the
// identity of a callback. WithReceiver attaches a comparable binding value
// that handlers see as Envelope.Receiver and that Off can match on:
//
//	em.Off("", nil, view) // remove everything registered for view
//
// # Thread Safety
//
// Registration bookkeeping is guarded by a mutex, but handlers are invoked
// without locks and the owners of an emitter (collections) are
// single-goroutine objects.
package event
