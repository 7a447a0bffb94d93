package config

import (
	"os"
	"sync"
)

type TaxonomyConfig struct {
	Path string
}

var (
	taxonomyConfig *TaxonomyConfig
	taxonomyOnce   sync.Once
)

func LoadTaxonomyConfig() *TaxonomyConfig {
	taxonomyOnce.Do(func() {
		path := os.Getenv("TAXONOMY_PATH")
		if path == "" {
			path = "data/skills_taxonomy.json"
		}
		taxonomyConfig = &TaxonomyConfig{
			Path: path,
		}
	})
	return taxonomyConfig
}
