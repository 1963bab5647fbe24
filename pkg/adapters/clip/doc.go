// Package clip provides host-side pose sources for driving a blend node:
// a fixed pose and a keyframed clip sampled with linear and spherical interpolation.
package clip
