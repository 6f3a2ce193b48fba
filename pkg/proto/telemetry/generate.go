// Package telemetry contains the subset of MAVSDK's telemetry plugin API used
// to follow the vehicle's armed state.
package telemetry

// To regenerate the protocol buffer output for this package, run
//	go generate

//go:generate protoc telemetry.proto --go_out=plugins=grpc,paths=source_relative:.
