package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"

	"github.com/umputun/chatgate/pkg/settings"
)

// Bedrock is a chat client for Amazon Bedrock, using the Converse API
type Bedrock struct {
	client *bedrockruntime.Client
	model  string
	region string
}

func newBedrock(s *settings.AmazonBedrock, hc *http.Client, optFns ...func(*bedrockruntime.Options)) *Bedrock {
	opts := bedrockruntime.Options{
		Region:      s.Region.String(),
		Credentials: credentials.NewStaticCredentialsProvider(s.AccessKeyID.String(), s.SecretAccessKey.String(), ""),
	}
	if hc != nil {
		opts.HTTPClient = hc
	}
	return &Bedrock{client: bedrockruntime.New(opts, optFns...), model: s.ModelID.String(), region: s.Region.String()}
}

// Name returns the connector name
func (b *Bedrock) Name() string {
	return "AmazonBedrock"
}

// Model returns the model id
func (b *Bedrock) Model() string {
	return b.model
}

// Generate sends a prompt through Converse and returns the first text block
func (b *Bedrock) Generate(ctx context.Context, prompt string) (string, error) {
	out, err := b.client.Converse(ctx, &bedrockruntime.ConverseInput{
		ModelId: aws.String(b.model),
		Messages: []types.Message{{
			Role:    types.ConversationRoleUser,
			Content: []types.ContentBlock{&types.ContentBlockMemberText{Value: prompt}},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("bedrock api error (%s): %w", b.region, err)
	}

	msg, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return "", errors.New("bedrock returned no message")
	}
	for _, block := range msg.Value.Content {
		if text, ok := block.(*types.ContentBlockMemberText); ok {
			return text.Value, nil
		}
	}
	return "", errors.New("bedrock returned empty response")
}
