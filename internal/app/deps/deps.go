package deps

import (
	"accountd/internal/config"
	dl "accountd/internal/core/domain/logging"
	drl "accountd/internal/core/domain/rate_limiter"
	"accountd/internal/core/domain/user"
	dbuser "accountd/internal/db/user"
	"accountd/internal/implementations/email"
	"accountd/internal/implementations/logging"
	passwordhasher "accountd/internal/implementations/password_hasher"
	passwordresetproof "accountd/internal/implementations/password_reset_proof"
	randomstringgenerator "accountd/internal/implementations/random_string_generator"
	ratelimiter "accountd/internal/implementations/rate_limiter"
	"context"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB    *pgxpool.Pool
	Redis *redis.Client

	Now func() time.Time

	UserRepository               user.UserRepository
	SessionRepository            user.SessionRepository
	PasswordResetTokenRepository user.PasswordResetTokenRepository

	RateLimiter drl.RateLimiter

	PasswordHasher              user.PasswordHasher
	SessionTokenGenerator       user.SessionTokenGenerator
	PasswordResetTokenGenerator user.PasswordResetTokenGenerator
	PasswordResetProofCodec     user.ProofCodec
	PasswordResetSender         user.PasswordResetSender
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.SessionRepository = dbuser.NewPgxSessionRepository(deps.DB)
	deps.PasswordResetTokenRepository = dbuser.NewPgxPasswordResetTokenRepository(deps.DB)

	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)

	generator := randomstringgenerator.NewGenerator()
	deps.SessionTokenGenerator = generator
	deps.PasswordResetTokenGenerator = generator

	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.PasswordResetProofCodec = passwordresetproof.NewJWTCodec(deps.Config.Secret)
	deps.PasswordResetSender = deps.initPasswordResetSender()

	return deps, func() {
		closeFuncs := []func(){
			closeRedisClient,
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initPasswordResetSender() user.PasswordResetSender {
	baseURL, err := url.Parse(deps.Config.PasswordResetBaseURL)
	if err != nil {
		panic(err)
	}

	if deps.Config.EmailBackend == config.EmailBackendSES {
		return email.NewSESSender(deps.initAwsConfig(), deps.Config.EmailSender, *baseURL)
	}
	return email.NewSMTPSender(
		deps.Config.SMTPHost,
		strconv.Itoa(deps.Config.SMTPPort),
		deps.Config.SMTPUsername,
		deps.Config.SMTPPassword,
		*baseURL,
		deps.Now,
	)
}

func (deps *Deps) initAwsConfig() aws.Config {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AWSRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AWSAccessKeyID,
				deps.Config.AWSSecretAccessKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	return cfg
}
