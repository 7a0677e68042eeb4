// Package buffer provides a row-major image plane and a pool for
// allocation-friendly raster processing. Engines consume samples one at a
// time; Plane is the convenience that lets callers hold a whole frame,
// stream it in raster order and collect results in place.
package buffer
