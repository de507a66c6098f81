// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package group

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Factory creates a group instance.
type Factory func() Group

var (
	registryMutex sync.Mutex
	registry      = map[string]Factory{}
)

// Register makes a group available under the given name. It is intended to
// be called from init functions and panics on duplicate registrations.
func Register(name string, factory Factory) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	name = strings.ToLower(name)
	if _, found := registry[name]; found {
		panic(fmt.Sprintf("group %q registered twice", name))
	}
	registry[name] = factory
}

// Lookup returns a new instance of the group registered under name.
func Lookup(name string) (Group, error) {
	registryMutex.Lock()
	factory, found := registry[strings.ToLower(name)]
	registryMutex.Unlock()
	if !found {
		return nil, fmt.Errorf("%w: %q, supported: %s", ErrUnknownGroup, name, strings.Join(Names(), ", "))
	}
	return factory(), nil
}

// Names lists all registered group names in lexicographical order.
func Names() []string {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	res := make([]string, 0, len(registry))
	for name := range registry {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}
