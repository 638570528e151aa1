package config

// ClassifierConfig represents the configuration for the remote spam classifier
type ClassifierConfig struct {
	Endpoint           string
	APIToken           string
	BreakerMaxFailures int
}

// EmbeddingConfig represents the configuration for the embedding provider
type EmbeddingConfig struct {
	Provider    string
	ModelName   string
	Endpoint    string
	APIToken    string
	Dimension   int
	OllamaURL   string
	OllamaModel string
}

// LLMConfig represents the configuration for the LLM provider
type LLMConfig struct {
	Provider string
}

// GroqConfig represents the configuration for Groq
type GroqConfig struct {
	APIKey      string
	BaseURL     string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
}

// GeminiConfig represents the configuration for Google Gemini
type GeminiConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region      string
	ModelID     string
	MaxTokens   int
	Temperature float32
	TopP        float32
}

// IndexConfig represents the configuration for the similarity index
type IndexConfig struct {
	SnapshotPath  string
	TopK          int
	MaxPromptSize int
}

// GetClassifier returns the classifier configuration
func (c *Config) GetClassifier() ClassifierConfig {
	return ClassifierConfig{
		Endpoint:           c.GetString("classifier.endpoint"),
		APIToken:           c.GetString("classifier.api_token"),
		BreakerMaxFailures: c.GetInt("classifier.breaker_max_failures"),
	}
}

// GetEmbedding returns the embedding configuration
func (c *Config) GetEmbedding() EmbeddingConfig {
	return EmbeddingConfig{
		Provider:    c.GetString("embedding.provider"),
		ModelName:   c.GetString("embedding.model_name"),
		Endpoint:    c.GetString("embedding.endpoint"),
		APIToken:    c.GetString("embedding.api_token"),
		Dimension:   c.GetInt("embedding.dimension"),
		OllamaURL:   c.GetString("embedding.ollama_url"),
		OllamaModel: c.GetString("embedding.ollama_model"),
	}
}

// GetLLM returns the LLM configuration
func (c *Config) GetLLM() LLMConfig {
	return LLMConfig{
		Provider: c.GetString("llm.provider"),
	}
}

// GetGroq returns the Groq configuration
func (c *Config) GetGroq() GroqConfig {
	return GroqConfig{
		APIKey:      c.GetString("groq.api_key"),
		BaseURL:     c.GetString("groq.base_url"),
		ModelName:   c.GetString("groq.model_name"),
		MaxTokens:   c.GetInt("groq.max_tokens"),
		Temperature: float32(c.GetFloat64("groq.temperature")),
		TopP:        float32(c.GetFloat64("groq.top_p")),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:      c.GetString("gemini.api_key"),
		ModelName:   c.GetString("gemini.model_name"),
		MaxTokens:   c.GetInt("gemini.max_tokens"),
		Temperature: float32(c.GetFloat64("gemini.temperature")),
		TopP:        float32(c.GetFloat64("gemini.top_p")),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:      c.GetString("bedrock.region"),
		ModelID:     c.GetString("bedrock.model_id"),
		MaxTokens:   c.GetInt("bedrock.max_tokens"),
		Temperature: float32(c.GetFloat64("bedrock.temperature")),
		TopP:        float32(c.GetFloat64("bedrock.top_p")),
	}
}

// GetIndex returns the similarity index configuration
func (c *Config) GetIndex() IndexConfig {
	return IndexConfig{
		SnapshotPath:  c.GetString("index.snapshot_path"),
		TopK:          c.GetInt("index.top_k"),
		MaxPromptSize: c.GetInt("index.max_prompt_size"),
	}
}
