// ABOUTME: CLI commands for Charm-based sync of the run log.
// ABOUTME: Supports link, unlink, status, now, repair, reset, and wipe operations.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/charm/kv"
	"github.com/fatih/color"
	"github.com/harperreed/fitcoach/internal/charm"
	"github.com/harperreed/fitcoach/internal/config"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync the run log across devices",
	Long: `Sync coaching runs across devices using Charm Cloud.

Sync applies to the charm backend. Set "backend": "charm" in
~/.config/coach/config.json or pass --backend charm.

Your data is E2E encrypted with your SSH key before upload.
The server never sees your unencrypted health data.

COMMANDS:

  link        Link this device to your Charm account
  unlink      Disconnect this device from Charm
  status      Show sync status and account info
  now         Sync immediately
  repair      Repair database corruption (checkpoints WAL, removes SHM, vacuums)
  reset       Reset local data and restore from cloud (destructive)
  wipe        Delete cloud and local data (destructive)

Runs sync automatically after each write.`,
}

func charmCommand(use, short, long string, run func(cmd *cobra.Command, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:         use,
		Short:       short,
		Long:        long,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{noStorage: "true"},
		RunE:        run,
	}
}

func runCharmCLI(args ...string) error {
	c := exec.Command("charm", args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

func confirm(cmd *cobra.Command, prompt, want string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	answer = strings.TrimSpace(answer)
	if want == "y" {
		return strings.EqualFold(answer, "y")
	}
	return answer == want
}

var syncLinkCmd = charmCommand("link", "Link this device to Charm", `Link this device to your Charm account.

If you don't have a Charm account, one will be created using your SSH key.`,
	func(cmd *cobra.Command, args []string) error {
		if err := runCharmCLI("link"); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("\n✓ Device linked to Charm"))

		client, err := charm.InitClient()
		if err != nil {
			return err
		}
		defer client.Close()
		if err := client.Sync(); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("⚠ Initial sync failed: %v", err))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Initial sync complete"))
		return nil
	})

var syncUnlinkCmd = charmCommand("unlink", "Disconnect from Charm", `Disconnect this device from Charm.

This does not delete your local runs.`,
	func(cmd *cobra.Command, args []string) error {
		if err := runCharmCLI("unlink"); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Device unlinked from Charm"))
		return nil
	})

var syncStatusCmd = charmCommand("status", "Show sync status", `Show the Charm account, server and number of synced runs.`,
	func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if cfg.GetBackend() != config.BackendCharm {
			fmt.Fprintf(out, "Backend: %s (sync is only used by the charm backend)\n", cfg.GetBackend())
		}

		client, err := charm.InitClient()
		if err != nil {
			fmt.Fprintln(out, color.YellowString("Charm client not initialized: %v", err))
			fmt.Fprintln(out, "\nRun 'coach sync link' to connect to Charm.")
			return nil
		}
		defer client.Close()

		id, err := client.ID()
		if err != nil {
			fmt.Fprintln(out, color.YellowString("Not linked to Charm"))
			fmt.Fprintln(out, "\nRun 'coach sync link' to connect to Charm.")
			return nil
		}

		fmt.Fprintln(out, "Charm ID:", id)
		fmt.Fprintln(out, "Server:", charm.Host())
		if client.IsReadOnly() {
			fmt.Fprintln(out, color.YellowString("Read-only: another process holds the database lock"))
		}
		fmt.Fprintln(out)

		ids, err := client.RunIDs()
		if err != nil {
			return fmt.Errorf("failed to count runs: %w", err)
		}
		fmt.Fprintln(out, color.GreenString("✓ Connected to Charm"))
		fmt.Fprintf(out, "  Runs: %d\n", len(ids))
		return nil
	})

var syncNowCmd = charmCommand("now", "Sync immediately", `Push local changes and pull remote runs now.`,
	func(cmd *cobra.Command, args []string) error {
		client, err := charm.InitClient()
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Sync complete"))
		return nil
	})

var syncRepairCmd = charmCommand("repair", "Repair database corruption", `Repair database corruption by checkpointing WAL, removing SHM files, checking integrity, and vacuuming.

Use this when you encounter database lock errors or corruption.
Run with --force to attempt recovery even if integrity checks fail.`,
	func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		force, _ := cmd.Flags().GetBool("force")

		fmt.Fprintln(out, "Repairing coach database...")
		result, err := kv.Repair(charm.DBName, force)

		if result.WalCheckpointed {
			fmt.Fprintln(out, color.GreenString("  ✓ WAL checkpointed"))
		}
		if result.ShmRemoved {
			fmt.Fprintln(out, color.GreenString("  ✓ SHM file removed"))
		}
		if result.IntegrityOK {
			fmt.Fprintln(out, color.GreenString("  ✓ Integrity check passed"))
		} else {
			fmt.Fprintln(out, color.RedString("  ✗ Integrity check failed"))
		}
		if result.Vacuumed {
			fmt.Fprintln(out, color.GreenString("  ✓ Database vacuumed"))
		}

		if err != nil {
			if !force {
				fmt.Fprintln(out, color.YellowString("\nRun with --force to attempt recovery."))
			}
			return fmt.Errorf("repair failed: %w", err)
		}

		fmt.Fprintln(out, color.GreenString("\n✓ Repair complete"))
		return nil
	})

var syncResetCmd = charmCommand("reset", "Reset local data and restore from cloud", `Delete all local runs and restore from Charm Cloud.

This is a destructive operation. All local data will be lost and restored from cloud.`,
	func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "This will DELETE all local runs and restore from cloud.")
		if !confirm(cmd, "Continue? [y/N]: ", "y") {
			fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
			return nil
		}

		if err := kv.Reset(charm.DBName); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Local data reset and restored from cloud"))
		return nil
	})

var syncWipeCmd = charmCommand("wipe", "Delete all cloud and local data", `Delete all cloud backups and local runs.

This is a DESTRUCTIVE operation. ALL runs will be permanently deleted.`,
	func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "This will PERMANENTLY DELETE all cloud backups and local runs.")
		if !confirm(cmd, "Type 'wipe' to confirm: ", "wipe") {
			fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
			return nil
		}

		result, err := kv.Wipe(charm.DBName)
		if err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Data wiped successfully"))
		fmt.Fprintf(cmd.OutOrStdout(), "  Cloud backups deleted: %d\n", result.CloudBackupsDeleted)
		fmt.Fprintf(cmd.OutOrStdout(), "  Local files deleted: %d\n", result.LocalFilesDeleted)
		return nil
	})

func init() {
	syncRepairCmd.Flags().Bool("force", false, "Attempt recovery even if integrity checks fail")

	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncNowCmd)
	syncCmd.AddCommand(syncRepairCmd)
	syncCmd.AddCommand(syncResetCmd)
	syncCmd.AddCommand(syncWipeCmd)

	rootCmd.AddCommand(syncCmd)
}
