package predictor

// ParallelFor exposes the worker-pool kernel to predictor_test.
var ParallelFor = parallelFor
