// Package predictor cracks GF(2)-linear pseudo-random generators from their
// integer outputs and predicts what they emit next.
//
// 🚀 How it works
//
//	A generator is GF(2)-linear when every output bit is a fixed XOR of
//	state bits and the state evolves by a fixed linear map (LFSRs,
//	xorshift, Mersenne Twister, …). Each bit position of the output then
//	satisfies its own linear recurrence, so the work splits per position:
//
//	  samples ──Extract──▶ bit stream ──Berlekamp–Massey──▶ (L, C, tail)
//	          ──LFSR step──▶ predicted bits ──Assemble──▶ predicted samples
//
// ✨ Key features:
//   - two parallel passes with a barrier: recover every position, then
//     step every position; positions never share mutable state
//   - static partitioning over a fixed worker pool (GOMAXPROCS by default),
//     each worker owning its scratch buffers for the whole pass
//   - all-or-nothing: configuration, sample count and memory budget are
//     checked before any computation starts
//   - Model keeps the recovered recurrences, so one crack can serve many
//     predictions and report untrustworthy positions (Suspect)
//
// ⚙️ Usage:
//
//	next, err := predictor.Predict(samples, 16, predictor.WithBits(32))
//	if errors.Is(err, predictor.ErrInsufficientData) {
//	  // need at least 2·bits samples
//	}
//
//	model, err := predictor.Crack(samples,
//	  predictor.WithPositions(8, 9, 10, 11),
//	  predictor.WithLogger(log),
//	)
//	next, err = model.Predict(4)
//
// Performance:
//
//   - Recovery:   O(P·n²) bit operations for P positions and n samples
//   - Prediction: O(P·L·k) for k predicted samples
//   - Memory:     O(W·n + P·n) for W workers
package predictor
