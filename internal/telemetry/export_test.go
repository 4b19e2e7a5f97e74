package telemetry

// Install exposes install to the external test package.
var Install = install
