// Package batch renders many scales to files concurrently.
//
// # Manager
//
// The Manager coordinates a batch export:
//
//  1. Resolve the requested roots and scale names
//  2. Compute one output path per root and scale
//  3. Generate, render and write every file concurrently
//
// # Basic Usage
//
//	manager := batch.NewManager(cat, settings, func(event batch.ProgressEvent) {
//	    fmt.Println(event.Message)
//	}, logger)
//
//	if err := manager.Plan(batch.DefaultRoots(), []string{"major", "natural-minor"}); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := manager.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// settings.MaxConcurrentExports limits how many files are rendered in
// parallel.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
package batch
