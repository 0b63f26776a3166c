package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lex00/streamwire-aws-go/destinations"
	"github.com/lex00/streamwire-aws-go/resources/firehose"
	"github.com/lex00/streamwire-aws-go/stream"
	"github.com/lex00/streamwire-aws-go/synth"
)

// streamConfig is the YAML declaration consumed by synth/validate/graph.
//
//	name: Clickstream
//	stream_name: clickstream-ingest
//	bucket_arn: arn:aws:s3:::clickstream-archive
//	role_arn: arn:aws:iam::123456789012:role/delivery   # optional
//	disable_logging: false
//	log_group: existing-group                           # optional
//	compression: GZIP
type streamConfig struct {
	Name              string           `yaml:"name"`
	StreamName        string           `yaml:"stream_name"`
	StreamType        string           `yaml:"stream_type"`
	BucketArn         string           `yaml:"bucket_arn"`
	RoleArn           string           `yaml:"role_arn"`
	DisableLogging    bool             `yaml:"disable_logging"`
	LogGroup          string           `yaml:"log_group"`
	LogStream         string           `yaml:"log_stream"`
	Prefix            string           `yaml:"prefix"`
	ErrorOutputPrefix string           `yaml:"error_output_prefix"`
	Compression       string           `yaml:"compression"`
	Buffering         *bufferingConfig `yaml:"buffering"`
}

type bufferingConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
	SizeMBs         int `yaml:"size_mbs"`
}

// loadConfig reads and validates a stream configuration file.
func loadConfig(path string) (*streamConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg streamConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Name == "" {
		return nil, fmt.Errorf("config is missing required field: name")
	}
	if cfg.BucketArn == "" {
		return nil, fmt.Errorf("config is missing required field: bucket_arn")
	}

	return &cfg, nil
}

// synthesize builds a synthesis context from a stream configuration.
func synthesize(cfg *streamConfig) (*synth.Context, error) {
	dest := destinations.S3Destination{
		Bucket:            destinations.BucketRef{Arn: cfg.BucketArn},
		DisableLogging:    cfg.DisableLogging,
		CompressionFormat: cfg.Compression,
	}

	if cfg.RoleArn != "" {
		role := destinations.RoleByArn(cfg.RoleArn)
		dest.Role = &role
	}
	if cfg.LogGroup != "" {
		ref := destinations.LogGroupRef{Name: cfg.LogGroup}
		if cfg.LogStream != "" {
			ref.Stream = cfg.LogStream
		}
		dest.LogGroup = &ref
	}
	if cfg.Prefix != "" {
		dest.Prefix = cfg.Prefix
	}
	if cfg.ErrorOutputPrefix != "" {
		dest.ErrorOutputPrefix = cfg.ErrorOutputPrefix
	}
	if cfg.Buffering != nil {
		dest.Buffering = &firehose.BufferingHints{
			IntervalInSeconds: cfg.Buffering.IntervalSeconds,
			SizeInMBs:         cfg.Buffering.SizeMBs,
		}
	}

	ctx := synth.New()

	var name any
	if cfg.StreamName != "" {
		name = cfg.StreamName
	}

	if _, err := stream.New(ctx, cfg.Name, stream.DeliveryStream{
		Name:        name,
		Type:        cfg.StreamType,
		Destination: dest,
	}); err != nil {
		return nil, err
	}

	return ctx, nil
}
