// Package deconv provides frequency-domain convolution, deconvolution and
// Richardson–Lucy restoration of 2-D images.
//
// All operations are circular: both arguments must share a shape and are
// transformed with a 2-D FFT of that shape. Results are passed through a
// centring shift (fftshift), so a point-spread function centred at
// (rows/2, cols/2) blurs an image without translating it on even shapes.
//
// # Usage
//
//	blurred, err := deconv.Convolve(object, kernel)
//	naive, err := deconv.Deconvolve(blurred, kernel)
//	restored, err := deconv.RichardsonLucy(blurred, kernel, deconv.WithIterations(100))
//
// For repeated work with one kernel, create an [Engine] to reuse the kernel
// spectrum and FFT plan:
//
//	e, err := deconv.NewEngine(kernel)
//	next, err := e.RichardsonLucyStep(estimate, blurred)
//
// # Deconvolution
//
// [Deconvolve] divides spectra directly. Where the kernel response is zero
// the quotient is Inf or NaN and the non-finite values spread through the
// inverse transform into the result; this is reported in the data, not as
// an error. [MinSpectrumMagnitude] tells in advance how close a kernel gets
// to that case. [DeconvRegularized] trades exactness for stability.
//
// # Richardson–Lucy
//
// Each step multiplies the estimate by the blurred ratio of the observation
// to the re-blurred estimate:
//
//	next = estimate * Convolve(observed / Convolve(estimate, kernel), kernel)
//
// [RichardsonLucy] starts from the observation and applies a fixed number
// of steps without a convergence test.
package deconv
