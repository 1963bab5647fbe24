package inertia

// Version is the release version of the module.
const Version = "0.3.0"
