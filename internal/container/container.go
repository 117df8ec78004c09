package container

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwell/inkwell-auth/config"
	"github.com/inkwell/inkwell-auth/pkg/googleauth"
	"github.com/inkwell/inkwell-auth/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg        *config.Config
	logger     *logrus.Logger
	database   *mongo.Database
	jwtManager *helpers.JWTManager
	verifier   googleauth.Verifier
)

func SetConfig(c *config.Config)          { cfg = c }
func GetConfig() *config.Config           { return cfg }
func SetLogger(l *logrus.Logger)          { logger = l }
func GetLogger() *logrus.Logger           { return logger }
func SetDatabase(db *mongo.Database)      { database = db }
func GetDatabase() *mongo.Database        { return database }
func SetVerifier(v googleauth.Verifier)   { verifier = v }
func GetVerifier() googleauth.Verifier    { return verifier }
func SetJWT(m *helpers.JWTManager)        { jwtManager = m }
func GetJWT() *helpers.JWTManager {
	if jwtManager != nil {
		return jwtManager
	}
	return helpers.DefaultJWT()
}
