// Package mocks holds the generated mocks of the canvas host.
//
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=mock.go -package=mocks github.com/launchrctl/sizeguard/pkg/canvas Client
package mocks
