package mysql

import (
	"fmt"
	"time"

	"chama-service/src/pkg/log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

type DBInterface interface {
	GetDB() (*sqlx.DB, error)
}

type Connection struct {
	db *sqlx.DB
}

func InitConnection(v *viper.Viper, logger log.Log) (*Connection, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=Local",
		v.GetString("mysql.username"),
		v.GetString("mysql.password"),
		v.GetString("mysql.host"),
		v.GetInt("mysql.port"),
		v.GetString("mysql.database"),
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		logger.Error("mysql", fmt.Sprintf("failed to connect: %v", err), "InitConnection", "")
		return nil, err
	}

	db.SetMaxOpenConns(v.GetInt("mysql.pool.max_open"))
	db.SetMaxIdleConns(v.GetInt("mysql.pool.max_idle"))
	db.SetConnMaxLifetime(time.Duration(v.GetInt("mysql.pool.max_lifetime_minutes")) * time.Minute)

	logger.Info("mysql", "database connected", "InitConnection", v.GetString("mysql.host"))
	return &Connection{db: db}, nil
}

func (c *Connection) GetDB() (*sqlx.DB, error) {
	if c == nil || c.db == nil {
		return nil, fmt.Errorf("mysql connection is not initialized")
	}
	return c.db, nil
}
