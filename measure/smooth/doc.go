// Package smooth quantifies how a smoothing filter performed on a recorded
// sample stream.
//
// Given the raw and the filtered stream it reports the residual RMSE, the
// lag the filter introduced (estimated by cross-correlation) and how much
// energy it removed from the jitter band — the spectrum above a crossover
// frequency separating intended motion from sensor noise. The metrics
// assume a (near-)uniform sample grid; streams captured with small
// timestamp jitter are fine, the band split just blurs accordingly.
package smooth
