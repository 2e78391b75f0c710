package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fundchain/x/fund/types"
)

const (
	flagMultiSig     = "multisig"
	flagHolder       = "holder"
	flagResetManager = "reset-manager-status"
	flagParams       = "params"
	flagHarvest      = "harvest"
)

// GetTxCmd returns the transaction commands for the fund module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Fund module transaction commands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdCreateFund(),
		CmdResetFundData(),
		CmdStartFundSales(),
		CmdBuyFund(),
		CmdCloseFundSales(),
		CmdFundBonus(),
		CmdStartFundSettlement(),
		CmdFundSettlement(),
		CmdFundContinuation(),
		CmdFundStop(),
		CmdStartFundLiquidation(),
		CmdModifyFundData(),
		CmdChangeInvestPolicy(),
		CmdChangeSigners(),
		CmdFundInvest(),
		CmdExecuteFundInvest(),
		CmdRedemptionAll(),
		CmdRedemptionByShare(),
		CmdWithdrawFundBonus(),
		CmdTransferShares(),
		CmdApproveShares(),
		CmdTransferSharesFrom(),
		CmdApproveLock(),
		CmdLock(),
		CmdIncreaseLockAmount(),
		CmdUnlock(),
		CmdUnlockAll(),
	)

	return cmd
}

func parseFundID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid fund id %q: %w", arg, err)
	}
	return id, nil
}

func parseSeconds(arg string) (int64, error) {
	v, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", arg, err)
	}
	return v, nil
}

func readConfig(path string) (types.FundConfig, error) {
	var config types.FundConfig
	bz, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(bz, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// broadcast validates msg and generates or broadcasts the tx
func broadcast(cmd *cobra.Command, clientCtx client.Context, msg sdk.Msg) error {
	if m, ok := msg.(interface{ ValidateBasic() error }); ok {
		if err := m.ValidateBasic(); err != nil {
			return err
		}
	}
	return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
}

// fundCmd builds a command whose only argument is the fund id
func fundCmd(use, short string, build func(from string, fundID uint64) sdk.Msg) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " [fund-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}
			return broadcast(cmd, clientCtx, build(clientCtx.GetFromAddress().String(), fundID))
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCreateFund returns the command to create a fund from a JSON config file
func CmdCreateFund() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-fund [config-file]",
		Short: "Create a fund from a JSON config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			config, err := readConfig(args[0])
			if err != nil {
				return err
			}
			multisig, _ := cmd.Flags().GetString(flagMultiSig)

			msg := &types.MsgCreateFund{
				Owner:          clientCtx.GetFromAddress().String(),
				MultiSigWallet: multisig,
				Config:         config,
			}
			return broadcast(cmd, clientCtx, msg)
		},
	}

	cmd.Flags().String(flagMultiSig, "", "Multi-sig wallet allowed to execute invest instructions")
	_ = cmd.MarkFlagRequired(flagMultiSig)
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdResetFundData returns the command to replace a fund config before its sale
func CmdResetFundData() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset-fund-data [fund-id] [config-file]",
		Short: "Replace the config of a fund waiting for sale",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}
			config, err := readConfig(args[1])
			if err != nil {
				return err
			}

			msg := &types.MsgResetFundData{
				Owner:  clientCtx.GetFromAddress().String(),
				FundID: fundID,
				Config: config,
			}
			return broadcast(cmd, clientCtx, msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdStartFundSales returns the command to open a fund sale
func CmdStartFundSales() *cobra.Command {
	return fundCmd("start-sales", "Open the sale of a fund", func(from string, fundID uint64) sdk.Msg {
		return &types.MsgStartFundSales{Owner: from, FundID: fundID}
	})
}

// CmdBuyFund returns the command to buy fund shares
func CmdBuyFund() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy [fund-id] [share]",
		Short: "Buy fund shares at the current net value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}

			msg := &types.MsgBuyFund{
				Buyer:  clientCtx.GetFromAddress().String(),
				FundID: fundID,
				Share:  args[1],
			}
			return broadcast(cmd, clientCtx, msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCloseFundSales returns the command to close a fund sale
func CmdCloseFundSales() *cobra.Command {
	return fundCmd("close-sales", "Close the sale of a fund once its raise period is over", func(from string, fundID uint64) sdk.Msg {
		return &types.MsgCloseFundSales{Admin: from, FundID: fundID}
	})
}

// CmdFundBonus returns the command to distribute profit
func CmdFundBonus() *cobra.Command {
	return fundCmd("bonus", "Distribute the profit made since the last bonus", func(from string, fundID uint64) sdk.Msg {
		return &types.MsgFundBonus{Admin: from, FundID: fundID}
	})
}

// CmdStartFundSettlement returns the command to start settlement
func CmdStartFundSettlement() *cobra.Command {
	return fundCmd("start-settlement", "Move a closed fund into settlement", func(from string, fundID uint64) sdk.Msg {
		return &types.MsgStartFundSettlement{Admin: from, FundID: fundID}
	})
}

// CmdFundSettlement returns the command to settle a fund
func CmdFundSettlement() *cobra.Command {
	return fundCmd("settle", "Settle a fund and open redemption", func(from string, fundID uint64) sdk.Msg {
		return &types.MsgFundSettlement{Admin: from, FundID: fundID}
	})
}

// CmdFundContinuation returns the command to continue a perpetual fund
func CmdFundContinuation() *cobra.Command {
	return fundCmd("continue", "Reopen a perpetual fund for another closed period", func(from string, fundID uint64) sdk.Msg {
		return &types.MsgFundContinuation{Admin: from, FundID: fundID}
	})
}

// CmdFundStop returns the command to stop a fund
func CmdFundStop() *cobra.Command {
	return fundCmd("stop", "Stop a fund that is not perpetual", func(from string, fundID uint64) sdk.Msg {
		return &types.MsgFundStop{Admin: from, FundID: fundID}
	})
}

// CmdStartFundLiquidation returns the command to liquidate a fund
func CmdStartFundLiquidation() *cobra.Command {
	return fundCmd("start-liquidation", "Move a closed fund into liquidation", func(from string, fundID uint64) sdk.Msg {
		return &types.MsgStartFundLiquidation{Caller: from, FundID: fundID}
	})
}

// CmdModifyFundData returns the command to replace the config of a closed fund
func CmdModifyFundData() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modify-fund-data [fund-id] [config-file]",
		Short: "Replace the config of a closed fund",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}
			config, err := readConfig(args[1])
			if err != nil {
				return err
			}
			reset, _ := cmd.Flags().GetBool(flagResetManager)

			msg := &types.MsgModifyFundData{
				Caller:             clientCtx.GetFromAddress().String(),
				FundID:             fundID,
				Config:             config,
				ResetManagerStatus: reset,
			}
			return broadcast(cmd, clientCtx, msg)
		},
	}

	cmd.Flags().Bool(flagResetManager, false, "Grant admin rights to the new managers")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdChangeInvestPolicy returns the command to schedule a new invest policy
func CmdChangeInvestPolicy() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "change-invest-policy [fund-id] [policy-name]",
		Short: "Schedule a new invest policy name applied at continuation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}

			msg := &types.MsgChangeInvestPolicy{
				Caller:    clientCtx.GetFromAddress().String(),
				FundID:    fundID,
				NewPolicy: args[1],
			}
			return broadcast(cmd, clientCtx, msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdChangeSigners returns the command to change the required signer count
func CmdChangeSigners() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "change-signers [fund-id] [number]",
		Short: "Change how many managers must sign an invest instruction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}
			number, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid number: %w", err)
			}

			msg := &types.MsgChangeNumberOfNeedSignedAddresses{
				Caller: clientCtx.GetFromAddress().String(),
				FundID: fundID,
				Number: number,
			}
			return broadcast(cmd, clientCtx, msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func investArgs(cmd *cobra.Command, args []string) (uint64, []byte, bool, error) {
	fundID, err := parseFundID(args[0])
	if err != nil {
		return 0, nil, false, err
	}
	params, _ := cmd.Flags().GetString(flagParams)
	harvest, _ := cmd.Flags().GetBool(flagHarvest)
	return fundID, []byte(params), harvest, nil
}

// CmdFundInvest returns the command to propose or run an invest instruction
func CmdFundInvest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invest [fund-id] [defi] [denom]",
		Short: "Propose an invest instruction, or run it when one signer is enough",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			fundID, params, harvest, err := investArgs(cmd, args)
			if err != nil {
				return err
			}

			msg := &types.MsgFundInvest{
				Admin:      clientCtx.GetFromAddress().String(),
				FundID:     fundID,
				Defi:       args[1],
				Params:     params,
				Denom:      args[2],
				HasHarvest: harvest,
			}
			return broadcast(cmd, clientCtx, msg)
		},
	}

	cmd.Flags().String(flagParams, "", "Opaque parameters passed to the invest policy")
	cmd.Flags().Bool(flagHarvest, false, "Offer harvested rewards to holders")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdExecuteFundInvest returns the command the multi-sig wallet uses to run an instruction
func CmdExecuteFundInvest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute-invest [fund-id] [defi] [denom]",
		Short: "Run an invest instruction from the fund's multi-sig wallet",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			fundID, params, harvest, err := investArgs(cmd, args)
			if err != nil {
				return err
			}

			msg := &types.MsgExecuteFundInvest{
				Wallet:     clientCtx.GetFromAddress().String(),
				FundID:     fundID,
				Defi:       args[1],
				Params:     params,
				Denom:      args[2],
				HasHarvest: harvest,
			}
			return broadcast(cmd, clientCtx, msg)
		},
	}

	cmd.Flags().String(flagParams, "", "Opaque parameters passed to the invest policy")
	cmd.Flags().Bool(flagHarvest, false, "Offer harvested rewards to holders")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRedemptionAll returns the command to redeem every share
func CmdRedemptionAll() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redeem-all [fund-id]",
		Short: "Redeem all shares",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}
			holder, _ := cmd.Flags().GetString(flagHolder)

			msg := &types.MsgRedemptionAll{
				Sender: clientCtx.GetFromAddress().String(),
				FundID: fundID,
				Holder: holder,
			}
			return broadcast(cmd, clientCtx, msg)
		},
	}

	cmd.Flags().String(flagHolder, "", "Redeem on behalf of this holder using an allowance")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRedemptionByShare returns the command to redeem part of a position
func CmdRedemptionByShare() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redeem [fund-id] [share]",
		Short: "Redeem a number of shares",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}
			holder, _ := cmd.Flags().GetString(flagHolder)

			msg := &types.MsgRedemptionByShare{
				Sender: clientCtx.GetFromAddress().String(),
				FundID: fundID,
				Holder: holder,
				Share:  args[1],
			}
			return broadcast(cmd, clientCtx, msg)
		},
	}

	cmd.Flags().String(flagHolder, "", "Redeem on behalf of this holder using an allowance")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawFundBonus returns the command to claim pending bonus
func CmdWithdrawFundBonus() *cobra.Command {
	return fundCmd("withdraw-bonus", "Claim pending bonus without moving shares", func(from string, fundID uint64) sdk.Msg {
		return &types.MsgWithdrawFundBonus{Holder: from, FundID: fundID}
	})
}

// CmdTransferShares returns the command to transfer shares
func CmdTransferShares() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer [fund-id] [to] [amount]",
		Short: "Transfer unlocked shares",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}

			msg := &types.MsgTransferShares{
				From:   clientCtx.GetFromAddress().String(),
				FundID: fundID,
				To:     args[1],
				Amount: args[2],
			}
			return broadcast(cmd, clientCtx, msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdApproveShares returns the command to set a share allowance
func CmdApproveShares() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve [fund-id] [spender] [amount]",
		Short: "Allow spender to move or redeem shares",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}

			msg := &types.MsgApproveShares{
				Owner:   clientCtx.GetFromAddress().String(),
				FundID:  fundID,
				Spender: args[1],
				Amount:  args[2],
			}
			return broadcast(cmd, clientCtx, msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdTransferSharesFrom returns the command to move shares with an allowance
func CmdTransferSharesFrom() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer-from [fund-id] [from] [to] [amount]",
		Short: "Transfer shares using an allowance",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}

			msg := &types.MsgTransferSharesFrom{
				Spender: clientCtx.GetFromAddress().String(),
				FundID:  fundID,
				From:    args[1],
				To:      args[2],
				Amount:  args[3],
			}
			return broadcast(cmd, clientCtx, msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdApproveLock returns the command to authorize a locker
func CmdApproveLock() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve-lock [fund-id] [locker] [amount] [max-duration]",
		Short: "Allow locker to freeze shares for up to max-duration seconds",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}
			maxDuration, err := parseSeconds(args[3])
			if err != nil {
				return err
			}

			msg := &types.MsgApproveLock{
				Holder:      clientCtx.GetFromAddress().String(),
				FundID:      fundID,
				Locker:      args[1],
				Amount:      args[2],
				MaxDuration: maxDuration,
			}
			return broadcast(cmd, clientCtx, msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdLock returns the command to open a lock ticket
func CmdLock() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock [fund-id] [holder] [amount] [duration]",
		Short: "Freeze shares of a holder that approved the sender",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}
			duration, err := parseSeconds(args[3])
			if err != nil {
				return err
			}

			msg := &types.MsgLock{
				Locker:   clientCtx.GetFromAddress().String(),
				FundID:   fundID,
				Holder:   args[1],
				Amount:   args[2],
				Duration: duration,
			}
			return broadcast(cmd, clientCtx, msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// lockerCmd builds a command taking a fund id, a holder and an amount
func lockerCmd(use, short string, build func(locker string, fundID uint64, holder, amount string) sdk.Msg) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " [fund-id] [holder] [amount]",
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}
			return broadcast(cmd, clientCtx, build(clientCtx.GetFromAddress().String(), fundID, args[1], args[2]))
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdIncreaseLockAmount returns the command to grow an active lock ticket
func CmdIncreaseLockAmount() *cobra.Command {
	return lockerCmd("increase-lock", "Add shares to an active lock ticket", func(locker string, fundID uint64, holder, amount string) sdk.Msg {
		return &types.MsgIncreaseLockAmount{Locker: locker, FundID: fundID, Holder: holder, Amount: amount}
	})
}

// CmdUnlock returns the command to release part of a lock ticket
func CmdUnlock() *cobra.Command {
	return lockerCmd("unlock", "Release shares from a lock ticket", func(locker string, fundID uint64, holder, amount string) sdk.Msg {
		return &types.MsgUnlock{Locker: locker, FundID: fundID, Holder: holder, Amount: amount}
	})
}

// CmdUnlockAll returns the command to clear a lock ticket
func CmdUnlockAll() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlock-all [fund-id] [holder]",
		Short: "Clear the lock ticket of a holder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}

			msg := &types.MsgUnlockAll{
				Locker: clientCtx.GetFromAddress().String(),
				FundID: fundID,
				Holder: args[1],
			}
			return broadcast(cmd, clientCtx, msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
