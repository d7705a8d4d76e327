package mariadb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/c14220110/clinic-portal/config"
	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// DSN menyusun data source name dari konfigurasi.
// Format: username:password@tcp(host:port)/dbname?parseTime=true&loc=Local
func DSN(cfg *config.Config) string {
	mc := mysql.NewConfig()
	mc.User = cfg.DBUser
	mc.Passwd = cfg.DBPassword
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%s", cfg.DBHost, cfg.DBPort)
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	mc.Loc = time.Local
	return mc.FormatDSN()
}

// Connect membuka koneksi ke MariaDB yang dipakai sebagai penyimpanan sesi.
func Connect(ctx context.Context, cfg *config.Config, log *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("open mariadb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mariadb %s:%s: %w", cfg.DBHost, cfg.DBPort, err)
	}

	log.Info("connected to mariadb", zap.String("host", cfg.DBHost), zap.String("db", cfg.DBName))
	return db, nil
}
