package version

// Version is the release tag baked into the CLI and service-info.
const Version = "1.0.0"
