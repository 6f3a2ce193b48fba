// Package logfiles contains the subset of MAVSDK's log_files plugin API used
// to list and download flight logs.
package logfiles

// To regenerate the protocol buffer output for this package, run
//	go generate

//go:generate protoc log_files.proto --go_out=plugins=grpc,paths=source_relative:.
