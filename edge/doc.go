// Package edge extracts sparse gradient points from raster images and chains them into polylines.
//
// Detection convolves the grayscale image with three 3×3 kernel pairs and keeps the strongest
// response per pixel. An adaptive loop retunes the threshold until the sampled point count lands
// near a target. When pixels cannot be read the pipeline substitutes procedural patterns, so callers
// always receive drawable chains.
package edge
