package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/condominios-online/condominios_mid/internal/clients"
	"github.com/condominios-online/condominios_mid/internal/envelope"
	"github.com/condominios-online/condominios_mid/internal/normalize"
	internalservices "github.com/condominios-online/condominios_mid/internal/services"
	rootservices "github.com/condominios-online/condominios_mid/services"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "condoctl",
		Short:         "Herramientas de operación del MID de condominios",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newDecodeCmd(), newEncodeCmd(), newTasaCmd())
	return root
}

func newDecodeCmd() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "decode [archivo]",
		Short: "Desenvuelve data[0][\"@res\"] de una respuesta capturada (stdin si no hay archivo)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if plain {
				p, err := envelope.DecodePlain(raw)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"response": p.Response,
					"status":   p.Status,
					"body":     p.Body,
				})
			}
			list, err := envelope.Decode(raw)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), envelope.MensajeFormatoDatos, err)
			}
			return printJSON(cmd.OutOrStdout(), list)
		},
	}
	cmd.Flags().BoolVar(&plain, "payload", false, "muestra {response, status, body} en lugar de solo los registros")
	return cmd
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [archivo]",
		Short: "Envuelve un arreglo JSON con la forma {data:[{\"@res\": ...}]}",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			var list []any
			if err := json.Unmarshal(raw, &list); err != nil {
				return fmt.Errorf("se esperaba un arreglo JSON: %w", err)
			}
			out, err := envelope.Encode(list)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}

func newTasaCmd() *cobra.Command {
	var monto string
	cmd := &cobra.Command{
		Use:   "tasa <fecha>",
		Short: "Consulta la tasa Bs/USD de una fecha (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootservices.GetConfig()
			svc := internalservices.NewTasasService(
				clients.NewTasasClient(cfg.TasasBaseURL, cfg.TasasAPIKey, cfg.RequestTimeout),
				cfg.TasaOficial,
				cfg.TasaCacheTTL,
			)

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			res, err := svc.Dolar(ctx, args[0])
			if err != nil {
				return err
			}

			out := map[string]any{"fecha": res.Fecha, "tasa": res.Tasa, "fuente": res.Fuente}
			if monto != "" {
				bs, err := normalize.ParseMontoFormulario(monto)
				if err != nil {
					return fmt.Errorf("monto inválido: %w", err)
				}
				if usd, ok := internalservices.Equivalencia(bs, res.Tasa); ok {
					out["montoBs"] = bs
					out["montoUsd"] = usd
				}
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&monto, "monto", "", "monto en Bs a convertir con la tasa")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
