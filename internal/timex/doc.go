// Package timex holds small time types with lenient JSON codecs: Duration
// for configuration files and Time for API timestamps.
package timex
