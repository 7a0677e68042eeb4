package main

import (
	"sort"
	"strings"

	"github.com/cwbudde/algo-slidewin/dsp/kernel"
)

type kernelEntry struct {
	name string
	make func() (*kernel.Kernel, error)
}

var registry = []kernelEntry{
	{"box3", func() (*kernel.Kernel, error) { return kernel.Box(3, 3) }},
	{"box5", func() (*kernel.Kernel, error) { return kernel.Box(5, 5) }},
	{"binomial3", func() (*kernel.Kernel, error) { return kernel.Binomial(3) }},
	{"binomial5", func() (*kernel.Kernel, error) { return kernel.Binomial(5) }},
	{"gauss5", func() (*kernel.Kernel, error) { return kernel.Gaussian(5, 1.0) }},
	{"gauss7", func() (*kernel.Kernel, error) { return kernel.Gaussian(7, 1.5) }},
	{"sobel-x", func() (*kernel.Kernel, error) { return kernel.SobelX(), nil }},
	{"sobel-y", func() (*kernel.Kernel, error) { return kernel.SobelY(), nil }},
	{"laplacian", func() (*kernel.Kernel, error) { return kernel.Laplacian(), nil }},
}

func lookupKernel(name string) (kernelEntry, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}
	return kernelEntry{}, false
}

func kernelNames() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	return names
}
