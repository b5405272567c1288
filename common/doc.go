// Package common contains the helpers shared by the bitutil packages, most
// notably the pluggable logger. Logging is silent until a logger is installed
// with SetLogger.
package common
