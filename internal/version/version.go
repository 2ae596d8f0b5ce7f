// Package version contains the oecdrt version.
package version

// Version is the version of oecdrt.
const Version = "0.1.0"
