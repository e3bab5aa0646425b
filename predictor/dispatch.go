package predictor

import "sync"

// parallelFor splits [0, items) into at most workers contiguous blocks and
// runs block(lo, hi) for each on its own goroutine. It returns after every
// block has finished, which is the barrier between passes.
//
// A block is one worker's whole share, so scratch it allocates is reused
// across its items and released when it returns. Blocks must only write
// to the slots of their own items.
func parallelFor(items, workers int, block func(lo, hi int)) {
	if items == 0 {
		return
	}
	if workers > items {
		workers = items
	}
	if workers <= 1 {
		block(0, items)

		return
	}

	chunk := (items + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < items; lo += chunk {
		hi := min(lo+chunk, items)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			block(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
