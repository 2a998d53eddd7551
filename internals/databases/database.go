package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"produksiku_backend/internals/configs"
	authModel "produksiku_backend/internals/features/users/auth/model"
	userModel "produksiku_backend/internals/features/users/user/model"
	productModel "produksiku_backend/internals/features/master/products/model"
	orderModel "produksiku_backend/internals/features/production/orders/model"
	planModel "produksiku_backend/internals/features/production/plans/model"
	reportModel "produksiku_backend/internals/features/production/reports/model"
	sequenceModel "produksiku_backend/internals/features/production/sequence/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	// ✅ DSN lengkap + statement_timeout
	// Catatan: kalau pakai PgBouncer, ganti host/port ke port PgBouncer dan biarkan PreferSimpleProtocol=true
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=produksiku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool keisi & siap
	go func() {
		time.Sleep(500 * time.Millisecond) // beri waktu server naik
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

// AutoMigrate menjaga skema tabel inti tetap sinkron saat boot.
func AutoMigrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.ApiTokenModel{},
		&productModel.MasterProductModel{},
		&planModel.ProductionPlanModel{},
		&planModel.ProductionPlanHistoryModel{},
		&orderModel.ProductionOrderModel{},
		&orderModel.ProductionOrderHistoryModel{},
		&orderModel.ProductionRejectModel{},
		&reportModel.ProductionReportModel{},
		&sequenceModel.NumberSequenceModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
