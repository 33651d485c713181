// Package connector defines the closed set of chat connectors and resolves which one is active.
package connector

import "strings"

// ID identifies a chat connector backend. The zero value is Unknown.
type ID int

// supported connectors, Unknown must stay first
const (
	Unknown ID = iota
	AmazonBedrock
	AzureAIFoundry
	GitHubModels
	GoogleVertexAI
	DockerModelRunner
	FoundryLocal
	HuggingFace
	Ollama
	Anthropic
	LG
	Naver
	OpenAI
	Upstage
)

type idInfo struct {
	name  string
	envNS string
}

var ids = [...]idInfo{
	Unknown:           {name: "Unknown"},
	AmazonBedrock:     {name: "AmazonBedrock", envNS: "AMAZON_BEDROCK"},
	AzureAIFoundry:    {name: "AzureAIFoundry", envNS: "AZURE_AI_FOUNDRY"},
	GitHubModels:      {name: "GitHubModels", envNS: "GITHUB_MODELS"},
	GoogleVertexAI:    {name: "GoogleVertexAI", envNS: "GOOGLE_VERTEX_AI"},
	DockerModelRunner: {name: "DockerModelRunner", envNS: "DOCKER_MODEL_RUNNER"},
	FoundryLocal:      {name: "FoundryLocal", envNS: "FOUNDRY_LOCAL"},
	HuggingFace:       {name: "HuggingFace", envNS: "HUGGING_FACE"},
	Ollama:            {name: "Ollama", envNS: "OLLAMA"},
	Anthropic:         {name: "Anthropic", envNS: "ANTHROPIC"},
	LG:                {name: "LG", envNS: "LG"},
	Naver:             {name: "Naver", envNS: "NAVER"},
	OpenAI:            {name: "OpenAI", envNS: "OPENAI"},
	Upstage:           {name: "Upstage", envNS: "UPSTAGE"},
}

// All returns every known connector in declaration order, Unknown excluded
func All() []ID {
	res := make([]ID, 0, len(ids)-1)
	for i := range ids {
		if ID(i) != Unknown {
			res = append(res, ID(i))
		}
	}
	return res
}

// String returns the canonical connector name, also used as the configuration section name
func (id ID) String() string {
	if !id.Valid() {
		return ids[Unknown].name
	}
	return ids[id].name
}

// EnvNamespace returns the prefix for environment variables of this connector, e.g. OPENAI
func (id ID) EnvNamespace() string {
	if !id.Valid() {
		return ""
	}
	return ids[id].envNS
}

// Valid reports whether id is one of the supported connectors
func (id ID) Valid() bool {
	return id > Unknown && int(id) < len(ids)
}

// Parse converts a connector name to ID, case-insensitive.
// Surrounding whitespace is ignored; anything unrecognized returns Unknown and false.
func Parse(s string) (ID, bool) {
	s = strings.TrimSpace(s)
	for i := range ids {
		if ID(i) != Unknown && strings.EqualFold(ids[i].name, s) {
			return ID(i), true
		}
	}
	return Unknown, false
}
