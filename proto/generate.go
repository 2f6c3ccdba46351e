// Package proto holds the agent service contract. The gRPC bindings are
// generated into this package.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative agent.proto
