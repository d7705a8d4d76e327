package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/c14220110/clinic-portal/config"
	"github.com/c14220110/clinic-portal/internal/apiclient"
	authServices "github.com/c14220110/clinic-portal/internal/auth/services"
	"github.com/c14220110/clinic-portal/internal/common/guard"
	"github.com/c14220110/clinic-portal/internal/common/session"
	patientServices "github.com/c14220110/clinic-portal/internal/patient/services"
	"github.com/c14220110/clinic-portal/pkg/logger"
	"github.com/c14220110/clinic-portal/ws"
)

// cliNamespace namespace tunggal sesi terminal di dalam FileStore.
const cliNamespace = "cli"

// errRedirectLogin satu-satunya hasil guard yang gagal; alasannya hanya di log.
var errRedirectLogin = errors.New("redirect: " + guard.LoginPath)

// cliEnv konfigurasi, logger, dan sesi terminal.
type cliEnv struct {
	cfg *config.Config
	log *zap.Logger
	sc  *session.Context
	api *apiclient.Client
}

func newCLIEnv() *cliEnv {
	cfg := config.LoadConfig()
	log := logger.NewCLI(cfg)
	storage := session.NewLocalStorage(session.NewFileStore(cfg.CLISessionDir), cliNamespace)
	return &cliEnv{
		cfg: cfg,
		log: log,
		sc:  session.NewContext(storage),
		api: apiclient.New(cfg.APIBaseURL, log),
	}
}

// require menjalankan guard yang sama dengan portal web.
func (env *cliEnv) require(ctx context.Context, roles []string) (*session.Session, error) {
	d := guard.Check(ctx, env.sc.Storage, roles)
	if !d.Allowed {
		env.log.Debug("cli guard denied", zap.String("reason", string(d.Reason)))
		return nil, errRedirectLogin
	}
	return d.Session, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Masuk dan simpan sesi di terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := newCLIEnv()
			result, err := authServices.NewAuthService(env.api, env.log).Login(cmd.Context(), env.sc, email, password)
			if err != nil {
				if errors.Is(err, authServices.ErrInvalidCredentials) {
					return errors.New("invalid email or password")
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", result.User.DisplayName(), result.User.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email akun")
	cmd.Flags().StringVar(&password, "password", "", "password akun")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Hapus sesi terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := newCLIEnv()
			if err := env.sc.End(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Tampilkan pengguna sesi terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := newCLIEnv()
			sess, err := env.require(cmd.Context(), guard.AnyRole())
			if err != nil {
				return err
			}
			return printJSON(cmd, sess.User)
		},
	}
}

func walletCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wallet",
		Short: "Ringkasan wallet dan tagihan pasien",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := newCLIEnv()
			if _, err := env.require(cmd.Context(), guard.PatientRoles); err != nil {
				return err
			}
			page := patientServices.NewWalletService(env.api, env.log).Wallet(cmd.Context(), env.sc)
			return printJSON(cmd, page)
		},
	}
}

func notificationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notifications",
		Short: "Tampilkan notifikasi realtime sampai dihentikan",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := newCLIEnv()
			if _, err := env.require(cmd.Context(), guard.AnyRole()); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			n, err := ws.Subscribe(ctx, ws.NotificationsURL(env.cfg.WSBaseURL), func(m ws.Message) {
				fmt.Fprintln(out, m.Text())
			})
			if err != nil {
				return err
			}
			<-n.Done()
			return n.Err()
		},
	}
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <consultation-id>",
		Short: "Gabung ke room chat konsultasi; setiap baris stdin dikirim",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := newCLIEnv()
			sess, err := env.require(cmd.Context(), guard.AnyRole())
			if err != nil {
				return err
			}
			url, err := ws.ChatURL(env.cfg.WSBaseURL, args[0])
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			self := ws.IdentityFor(sess.UserID(), sess.User.DisplayName())
			room, err := ws.JoinChat(ctx, url, self, func(m ws.ChatMessage) {
				fmt.Fprintf(out, "%s: %s\n", m.SenderName, m.Text)
			})
			if err != nil {
				return err
			}
			defer room.Close()

			lines := make(chan string)
			go func() {
				defer close(lines)
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					lines <- scanner.Text()
				}
			}()

			for {
				select {
				case <-room.Done():
					return room.Err()
				case line, ok := <-lines:
					if !ok {
						return nil
					}
					if _, err := room.Send(line); err != nil && !errors.Is(err, ws.ErrEmptyMessage) {
						return err
					}
				}
			}
		},
	}
}
