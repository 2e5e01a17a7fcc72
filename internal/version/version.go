package version

// AppVersion is overridden at build time via
// -ldflags "-X tmenu/internal/version.AppVersion=...".
var AppVersion = "1.0.0"
