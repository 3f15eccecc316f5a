//go:build !386 && !amd64 && !arm64 && !arm

package cpu

// No capabilities are cataloged for this GOARCH.
const numFeatures Feature = 0

var featureNames = [numFeatures]string{}
