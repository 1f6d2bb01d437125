// Package config loads service configuration from defaults, an optional YAML
// file named by CASE_CONFIG_FILE, and environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Bus types.
const (
	BusKafka  = "kafka"
	BusNATS   = "nats"
	BusMemory = "memory"
)

// Config is the full service configuration.
type Config struct {
	Server        Server              `yaml:"server"`
	Postgres      PostgresConfig      `yaml:"postgres"`
	Redis         RedisConfig         `yaml:"redis"`
	Bus           BusConfig           `yaml:"bus"`
	S3            S3Config            `yaml:"s3"`
	Collaborators CollaboratorsConfig `yaml:"collaborators"`
	Workflow      WorkflowConfig      `yaml:"workflow"`
	Topics        TopicsConfig        `yaml:"topics"`
	Encryption    EncryptionConfig    `yaml:"encryption"`
	Reference     ReferenceConfig     `yaml:"reference"`
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `yaml:"addr"`
	JWTSigningKey   string        `yaml:"jwt_signing_key"`
	JWTIssuer       string        `yaml:"jwt_issuer"`
	JWTAudience     string        `yaml:"jwt_audience"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	LogLevel        string        `yaml:"log_level"`
}

// PostgresConfig is empty-DSN safe: no DSN means the in-memory store.
type PostgresConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

type RedisConfig struct {
	URL          string        `yaml:"url"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type BusConfig struct {
	Type  string      `yaml:"type"`
	Kafka KafkaConfig `yaml:"kafka"`
	NATS  NATSConfig  `yaml:"nats"`
}

type KafkaConfig struct {
	Brokers           []string `yaml:"brokers"`
	ConsumerGroup     string   `yaml:"consumer_group"`
	Partitions        int32    `yaml:"partitions"`
	ReplicationFactor int16    `yaml:"replication_factor"`
}

type NATSConfig struct {
	URL        string `yaml:"url"`
	Stream     string `yaml:"stream"`
	QueueGroup string `yaml:"queue_group"`
}

// S3Config addresses the document store. No bucket means documents are not checked against S3.
type S3Config struct {
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	Bucket          string `yaml:"bucket"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	UsePathStyle    bool   `yaml:"use_path_style"`
}

// CollaboratorsConfig holds the base URLs of the platform services.
type CollaboratorsConfig struct {
	WorkflowURL   string        `yaml:"workflow_url"`
	IndividualURL string        `yaml:"individual_url"`
	AdvocateURL   string        `yaml:"advocate_url"`
	MDMSURL       string        `yaml:"mdms_url"`
	BillingURL    string        `yaml:"billing_url"`
	Timeout       time.Duration `yaml:"timeout"`
}

type WorkflowConfig struct {
	BusinessService    string `yaml:"business_service"`
	ModuleName         string `yaml:"module_name"`
	CreateDemandStatus string `yaml:"create_demand_status"`
	AdmittedStatus     string `yaml:"admitted_status"`
}

type TopicsConfig struct {
	Create string `yaml:"create"`
	Update string `yaml:"update"`
}

type EncryptionConfig struct {
	MasterKey string `yaml:"master_key"`
}

type ReferenceConfig struct {
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// Defaults returns a configuration suitable for local development.
func Defaults() Config {
	return Config{
		Server: Server{
			Addr:            ":8080",
			JWTSigningKey:   "dev-secret-key-change-in-production",
			JWTIssuer:       "caseregistry",
			JWTAudience:     "caseregistry",
			ShutdownTimeout: 10 * time.Second,
			LogLevel:        "info",
		},
		Postgres: PostgresConfig{
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Redis: RedisConfig{
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Bus: BusConfig{
			Type: BusMemory,
			Kafka: KafkaConfig{
				ConsumerGroup:     "case-persister",
				Partitions:        3,
				ReplicationFactor: 1,
			},
			NATS: NATSConfig{Stream: "CASES", QueueGroup: "case-persister"},
		},
		S3: S3Config{Region: "us-east-1"},
		Collaborators: CollaboratorsConfig{
			Timeout: 10 * time.Second,
		},
		Workflow: WorkflowConfig{
			BusinessService:    "case-default",
			ModuleName:         "case",
			CreateDemandStatus: "PAYMENT_PENDING",
			AdmittedStatus:     "CASE_ADMITTED",
		},
		Topics: TopicsConfig{
			Create: "save-case-application",
			Update: "update-case-application",
		},
		Reference: ReferenceConfig{CacheTTL: 15 * time.Minute},
	}
}

// Load builds the configuration. A missing CASE_CONFIG_FILE is an error only
// when the variable is set.
func Load() (Config, error) {
	cfg := Defaults()
	if path := os.Getenv("CASE_CONFIG_FILE"); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.overlayEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv builds the configuration from defaults and the environment only.
func FromEnv() Config {
	cfg := Defaults()
	cfg.overlayEnv()
	return cfg
}

func (c *Config) overlayFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) overlayEnv() {
	setString(&c.Server.Addr, "CASE_HTTP_ADDR")
	setString(&c.Server.JWTSigningKey, "JWT_SIGNING_KEY")
	setString(&c.Server.LogLevel, "LOG_LEVEL")
	setString(&c.Postgres.DSN, "DATABASE_URL")
	setString(&c.Redis.URL, "REDIS_URL")
	setString(&c.Bus.Type, "CASE_BUS")
	setList(&c.Bus.Kafka.Brokers, "KAFKA_BROKERS")
	setString(&c.Bus.NATS.URL, "NATS_URL")
	setString(&c.S3.Region, "S3_REGION")
	setString(&c.S3.Endpoint, "S3_ENDPOINT")
	setString(&c.S3.Bucket, "S3_BUCKET")
	setString(&c.S3.AccessKeyID, "S3_ACCESS_KEY_ID")
	setString(&c.S3.SecretAccessKey, "S3_SECRET_ACCESS_KEY")
	setBool(&c.S3.UsePathStyle, "S3_USE_PATH_STYLE")
	setString(&c.Collaborators.WorkflowURL, "WORKFLOW_URL")
	setString(&c.Collaborators.IndividualURL, "INDIVIDUAL_URL")
	setString(&c.Collaborators.AdvocateURL, "ADVOCATE_URL")
	setString(&c.Collaborators.MDMSURL, "MDMS_URL")
	setString(&c.Collaborators.BillingURL, "BILLING_URL")
	setString(&c.Topics.Create, "CASE_CREATE_TOPIC")
	setString(&c.Topics.Update, "CASE_UPDATE_TOPIC")
	setString(&c.Encryption.MasterKey, "CASE_ENCRYPTION_KEY")
}

// Validate reports configuration that cannot start the service.
func (c Config) Validate() error {
	var errs []error
	switch c.Bus.Type {
	case BusMemory:
	case BusKafka:
		if len(c.Bus.Kafka.Brokers) == 0 {
			errs = append(errs, errors.New("bus.kafka.brokers is required for the kafka bus"))
		}
	case BusNATS:
		if c.Bus.NATS.URL == "" {
			errs = append(errs, errors.New("bus.nats.url is required for the nats bus"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown bus type %q", c.Bus.Type))
	}
	if len(c.Encryption.MasterKey) < 32 {
		errs = append(errs, errors.New("encryption.master_key must be at least 32 bytes"))
	}
	if c.Topics.Create == "" || c.Topics.Update == "" {
		errs = append(errs, errors.New("topics.create and topics.update are required"))
	}
	return errors.Join(errs...)
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setList(dst *[]string, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*dst = out
}
