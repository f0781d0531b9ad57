package main

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Storage struct {
		Path string `yaml:"path"`
	} `yaml:"storage"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
}

func LoadConfig() *Config {
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}

	config := defaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		log.Printf("No config file, using defaults: %v", err)
	} else if err := yaml.Unmarshal(data, config); err != nil {
		log.Printf("Failed to parse config file, using defaults: %v", err)
		config = defaultConfig()
	}

	// Environment variables take precedence over the config file
	if envDir := os.Getenv("UPLOAD_DIR"); envDir != "" {
		config.Storage.Path = envDir
	}
	if envPort := os.Getenv("UPLOAD_PORT"); envPort != "" {
		config.Server.Port = envPort
	}

	// Upload responses report absolute paths, so resolve the storage
	// directory once up front.
	if abs, err := filepath.Abs(config.Storage.Path); err == nil {
		config.Storage.Path = abs
	}

	return config
}

func defaultConfig() *Config {
	config := &Config{}
	config.Storage.Path = "./share"
	config.Server.Port = "8888"
	return config
}
