/*
Package ports defines the contracts between the inertial blend node and its host.

A host animation graph drives every node through the same five-method lifecycle,
Initialize → CacheBones → Update → Evaluate, once per frame, plus GatherDebugData on demand.
Pose sources (clips, other blend nodes) and the blend node itself all satisfy PoseSource,
so nodes compose into trees.
*/
package ports
