/*
Package domain contains the core data model shared by the inertial blend node and its hosts.

It defines skeletal poses, the per-frame context handed to lifecycle callbacks, the externally
driven node configuration, and the observability events emitted while transitions run. This
package is kept pure and free of I/O, following the same hexagonal layout as the rest of the module.

# Key Entities

  - BoneTransform: Translation, unit rotation and scale of a single bone.
  - Pose: Index-aligned list of BoneTransform, one per bone of the skeleton.
  - Frame: Per-frame context (delta seconds and bone mapping) passed to every lifecycle call.
  - Config: Which source is selected, the blend duration, and whether activation resets a branch.
  - DebugData: Indented debug tree gathered from a node and its children.
*/
package domain
