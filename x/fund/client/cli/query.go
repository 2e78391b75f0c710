package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/openalpha/fundchain/x/fund/types"
)

// HoldingInfo is a CLI-friendly view of a share position
type HoldingInfo struct {
	FundID       uint64              `json:"fund_id"`
	Holder       string              `json:"holder"`
	Balance      string              `json:"balance"`
	LockedAmount string              `json:"locked_amount"`
	Holding      *types.ShareHolding `json:"holding"`
}

// GetQueryCmd returns the cli query commands for the fund module
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the fund module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQueryFund(),
		CmdQueryShareToken(),
		CmdQueryHolding(),
		CmdQueryAccumulator(),
		CmdQueryAllowance(),
		CmdQueryParams(),
	)

	return cmd
}

// queryRaw reads one module store key; a nil result means the key is unset
func queryRaw(cmd *cobra.Command, key []byte) ([]byte, error) {
	clientCtx, err := client.GetClientQueryContext(cmd)
	if err != nil {
		return nil, err
	}
	bz, _, err := clientCtx.QueryStore(key, types.StoreKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query store: %w", err)
	}
	return bz, nil
}

func printJSON(v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

// queryInto decodes a store value into out and prints it
func queryInto(cmd *cobra.Command, key []byte, what string, out interface{}) error {
	bz, err := queryRaw(cmd, key)
	if err != nil {
		return err
	}
	if bz == nil {
		return fmt.Errorf("%s not found", what)
	}
	if err := json.Unmarshal(bz, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", what, err)
	}
	return printJSON(out)
}

// CmdQueryFund returns the command to query a fund record
func CmdQueryFund() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund [fund-id]",
		Short: "Query a fund record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}
			var fund types.Fund
			return queryInto(cmd, types.FundKey(fundID), "fund", &fund)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryShareToken returns the command to query a fund's share token
func CmdQueryShareToken() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share-token [fund-id]",
		Short: "Query the share token of a fund",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}
			var token types.ShareToken
			return queryInto(cmd, types.ShareTokenKey(fundID), "share token", &token)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryHolding returns the command to query a share position
func CmdQueryHolding() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holding [fund-id] [holder]",
		Short: "Query the share position of a holder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}
			bz, err := queryRaw(cmd, types.HoldingKey(fundID, args[1]))
			if err != nil {
				return err
			}

			holding := types.NewShareHolding()
			if bz != nil {
				if err := json.Unmarshal(bz, holding); err != nil {
					return fmt.Errorf("failed to decode holding: %w", err)
				}
			}

			// expiry needs block time, so the locked amount shown is the raw ticket
			info := HoldingInfo{
				FundID:       fundID,
				Holder:       args[1],
				Balance:      holding.Balance.String(),
				LockedAmount: holding.LockTicket.Amount.String(),
				Holding:      holding,
			}
			return printJSON(info)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryAccumulator returns the command to query a bonus accumulator
func CmdQueryAccumulator() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accumulator [fund-id] [denom]",
		Short: "Query the bonus accumulator of a reward denom",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}
			var acc types.BonusAccumulator
			return queryInto(cmd, types.AccumulatorKey(fundID, args[1]), "accumulator", &acc)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryAllowance returns the command to query a share allowance
func CmdQueryAllowance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allowance [fund-id] [owner] [spender]",
		Short: "Query the shares spender may move for owner",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fundID, err := parseFundID(args[0])
			if err != nil {
				return err
			}
			bz, err := queryRaw(cmd, types.AllowanceKey(fundID, args[1], args[2]))
			if err != nil {
				return err
			}

			amount := "0"
			if bz != nil {
				if err := json.Unmarshal(bz, &amount); err != nil {
					return fmt.Errorf("failed to decode allowance: %w", err)
				}
			}
			return printJSON(map[string]string{
				"owner":     args[1],
				"spender":   args[2],
				"allowance": amount,
			})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryParams returns the command to query module parameters
func CmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the fund module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := queryRaw(cmd, types.ParamsKey)
			if err != nil {
				return err
			}
			params := types.DefaultParams()
			if bz != nil {
				if err := json.Unmarshal(bz, &params); err != nil {
					return fmt.Errorf("failed to decode params: %w", err)
				}
			}
			return printJSON(params)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
