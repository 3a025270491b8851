package config

import "github.com/xiaomi388/result-management/pkg/types"

func (c *Config) ClassIDs() []types.ClassID {
	ids := make([]types.ClassID, len(c.Classes))
	for i, class := range c.Classes {
		ids[i] = types.ClassID(class)
	}
	return ids
}

func (c *Config) HasClass(class types.ClassID) bool {
	for _, name := range c.Classes {
		if types.ClassID(name) == class {
			return true
		}
	}

	return false
}
