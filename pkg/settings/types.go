package settings

import "github.com/umputun/chatgate/pkg/connector"

// Settings is the connector-specific settings variant. The set of implementations is closed,
// exactly one per connector.ID.
//
// Fields are Value typed and tagged the same way go-flags options are: long is the flag name,
// env the variable suffix under the connector's env namespace, ini-name the key under the
// connector's configuration section and default the static default. Fields tagged secret
// are masked in logs. Required fields are listed in validation order.
type Settings interface {
	Connector() connector.ID
	isSettings()
}

// AmazonBedrock settings
type AmazonBedrock struct {
	AccessKeyID     Value `ini-name:"AccessKeyId" long:"access-key-id" env:"ACCESS_KEY_ID" secret:"true" description:"AWS access key id"`
	SecretAccessKey Value `ini-name:"SecretAccessKey" long:"secret-access-key" env:"SECRET_ACCESS_KEY" secret:"true" description:"AWS secret access key"`
	Region          Value `ini-name:"Region" long:"region" env:"REGION" description:"AWS region, e.g. us-east-1"`
	ModelID         Value `ini-name:"ModelId" long:"model-id" env:"MODEL_ID" description:"Bedrock model id"`
}

// AzureAIFoundry settings
type AzureAIFoundry struct {
	Endpoint       Value `ini-name:"Endpoint" long:"endpoint" env:"ENDPOINT" description:"Azure AI Foundry endpoint"`
	APIKey         Value `ini-name:"ApiKey" long:"api-key" env:"API_KEY" secret:"true" description:"Azure AI Foundry API key"`
	DeploymentName Value `ini-name:"DeploymentName" long:"deployment-name" env:"DEPLOYMENT_NAME" description:"model deployment name"`
}

// GitHubModels settings
type GitHubModels struct {
	Endpoint Value `ini-name:"Endpoint" long:"endpoint" env:"ENDPOINT" default:"https://models.github.ai/inference" description:"GitHub Models endpoint"`
	Token    Value `ini-name:"Token" long:"token" env:"TOKEN" secret:"true" description:"GitHub personal access token"`
	Model    Value `ini-name:"Model" long:"model" env:"MODEL" default:"openai/gpt-4o-mini" description:"GitHub Models model name"`
}

// GoogleVertexAI settings
type GoogleVertexAI struct {
	APIKey Value `ini-name:"ApiKey" long:"api-key" env:"API_KEY" secret:"true" description:"Google API key"`
	Model  Value `ini-name:"Model" long:"model" env:"MODEL" default:"gemini-2.5-flash" description:"Gemini model name"`
}

// DockerModelRunner settings
type DockerModelRunner struct {
	BaseURL Value `ini-name:"BaseUrl" long:"base-url" env:"BASE_URL" default:"http://localhost:12434/engines/v1" description:"Docker Model Runner OpenAI-compatible endpoint"`
	Model   Value `ini-name:"Model" long:"model" env:"MODEL" default:"ai/smollm2" description:"model name"`
}

// FoundryLocal settings
type FoundryLocal struct {
	Alias Value `ini-name:"Alias" long:"alias" env:"ALIAS" default:"phi-4-mini" description:"Foundry Local model alias"`
}

// HuggingFace settings, models are served by a local Ollama instance
type HuggingFace struct {
	BaseURL Value `ini-name:"BaseUrl" long:"base-url" env:"BASE_URL" default:"http://localhost:11434" description:"Ollama endpoint serving the model"`
	Model   Value `ini-name:"Model" long:"model" env:"MODEL" default:"hf.co/Qwen/Qwen3-0.6B-GGUF" description:"Hugging Face GGUF model, hf.co/<org>/<repo>-GGUF[:tag]"`
}

// Ollama settings
type Ollama struct {
	BaseURL Value `ini-name:"BaseUrl" long:"base-url" env:"BASE_URL" default:"http://localhost:11434" description:"Ollama endpoint"`
	Model   Value `ini-name:"Model" long:"model" env:"MODEL" default:"llama3.2" description:"Ollama model name"`
}

// Anthropic settings
type Anthropic struct {
	APIKey    Value `ini-name:"ApiKey" long:"api-key" env:"API_KEY" secret:"true" description:"Anthropic API key"`
	Model     Value `ini-name:"Model" long:"model" env:"MODEL" default:"claude-sonnet-4-0" description:"Anthropic model name"`
	MaxTokens Value `ini-name:"MaxTokens" long:"max-tokens" env:"MAX_TOKENS" default:"1024" description:"maximum number of tokens to generate, k suffix allowed"`
}

// LG settings, EXAONE models are served by a local Ollama instance
type LG struct {
	BaseURL Value `ini-name:"BaseUrl" long:"base-url" env:"BASE_URL" default:"http://localhost:11434" description:"Ollama endpoint serving the model"`
	Model   Value `ini-name:"Model" long:"model" env:"MODEL" default:"hf.co/LGAI-EXAONE/EXAONE-4.0-1.2B-GGUF" description:"EXAONE model, hf.co/LGAI-EXAONE/<repo>[:tag]"`
}

// Naver settings
type Naver struct {
	APIKey Value `ini-name:"ApiKey" long:"api-key" env:"API_KEY" secret:"true" description:"HyperCLOVA X API key"`
	Model  Value `ini-name:"Model" long:"model" env:"MODEL" default:"HCX-005" description:"HyperCLOVA X model name"`
}

// OpenAI settings
type OpenAI struct {
	APIKey  Value `ini-name:"ApiKey" long:"api-key" env:"API_KEY" secret:"true" description:"OpenAI API key"`
	Model   Value `ini-name:"Model" long:"model" env:"MODEL" default:"gpt-4.1-mini" description:"OpenAI model name"`
	BaseURL Value `ini-name:"BaseUrl" long:"base-url" env:"BASE_URL" description:"alternative OpenAI-compatible endpoint"`
}

// Upstage settings
type Upstage struct {
	BaseURL Value `ini-name:"BaseUrl" long:"base-url" env:"BASE_URL" default:"https://api.upstage.ai/v1" description:"Upstage endpoint"`
	APIKey  Value `ini-name:"ApiKey" long:"api-key" env:"API_KEY" secret:"true" description:"Upstage API key"`
	Model   Value `ini-name:"Model" long:"model" env:"MODEL" default:"solar-mini" description:"Upstage model name"`
}

func (*AmazonBedrock) Connector() connector.ID     { return connector.AmazonBedrock }
func (*AzureAIFoundry) Connector() connector.ID    { return connector.AzureAIFoundry }
func (*GitHubModels) Connector() connector.ID      { return connector.GitHubModels }
func (*GoogleVertexAI) Connector() connector.ID    { return connector.GoogleVertexAI }
func (*DockerModelRunner) Connector() connector.ID { return connector.DockerModelRunner }
func (*FoundryLocal) Connector() connector.ID      { return connector.FoundryLocal }
func (*HuggingFace) Connector() connector.ID       { return connector.HuggingFace }
func (*Ollama) Connector() connector.ID            { return connector.Ollama }
func (*Anthropic) Connector() connector.ID         { return connector.Anthropic }
func (*LG) Connector() connector.ID                { return connector.LG }
func (*Naver) Connector() connector.ID             { return connector.Naver }
func (*OpenAI) Connector() connector.ID            { return connector.OpenAI }
func (*Upstage) Connector() connector.ID           { return connector.Upstage }

func (*AmazonBedrock) isSettings()     {}
func (*AzureAIFoundry) isSettings()    {}
func (*GitHubModels) isSettings()      {}
func (*GoogleVertexAI) isSettings()    {}
func (*DockerModelRunner) isSettings() {}
func (*FoundryLocal) isSettings()      {}
func (*HuggingFace) isSettings()       {}
func (*Ollama) isSettings()            {}
func (*Anthropic) isSettings()         {}
func (*LG) isSettings()                {}
func (*Naver) isSettings()             {}
func (*OpenAI) isSettings()            {}
func (*Upstage) isSettings()           {}
