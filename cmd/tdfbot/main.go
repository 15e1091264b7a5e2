/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/bwmarrin/discordgo"
)

var botPubKey ed25519.PublicKey
var botAppId string
var tdfCmdId string

var client *discordgo.Session

type TopLevelCommand string

const (
	TdfCmd TopLevelCommand = "tdf"
)

type CmdHandler func(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse

var topLevelCmdHdlrs = map[TopLevelCommand]CmdHandler{
	TdfCmd: tdfCmdHandler,
}

func interactionHandler(w http.ResponseWriter, r *http.Request) {
	if !discordgo.VerifyInteraction(r, botPubKey) {
		log.Printf("tdfbot.int: failed to verify")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("tdfbot.int: failed to read request body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var inter discordgo.Interaction
	if err := inter.UnmarshalJSON(body); err != nil {
		log.Printf("tdfbot.int: failed to unmarshal interaction: err:%v body:%v",
			err, body)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp := &discordgo.InteractionResponse{}
	if inter.Type == discordgo.InteractionPing {
		resp.Type = discordgo.InteractionResponsePong
	} else if inter.Type == discordgo.InteractionApplicationCommand {
		hdlr, ok :=
			topLevelCmdHdlrs[TopLevelCommand(inter.ApplicationCommandData().Name)]
		if !ok {
			resp.Type = discordgo.InteractionResponseChannelMessageWithSource
			resp.Data = &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("unknown command '%v'",
					inter.ApplicationCommandData().Name),
				Flags: discordgo.MessageFlagsEphemeral,
			}
		} else {
			resp = hdlr(r.Context(), &inter)
		}
	} else {
		log.Printf("tdfbot.int: unimplemented interaction type %v: inter:%v",
			inter.Type, inter)
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	rawResp, err := json.Marshal(resp)
	if err != nil {
		log.Printf("tdfbot.int: failed to marshal resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(rawResp)
	if err != nil {
		log.Printf("tdfbot.int: failed to write resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

func init() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))

	pubKeyBytes, err := hex.DecodeString(os.Getenv("TDFBOT_PUB_KEY"))
	if err != nil {
		log.Fatalf("tdfbot.init: Failed to parse public key: %v", err)
	}
	botPubKey = ed25519.PublicKey(pubKeyBytes)
	botAppId = os.Getenv("TDFBOT_APP_ID")
	tdfCmdId = os.Getenv("TDFBOT_CMD_ID")

	client, err = discordgo.New("Bot " + os.Getenv("TDFBOT_TOKEN"))
	if err != nil {
		log.Fatalf("tdfbot.init: Failed to initialize discord client: %v", err)
	}
}

func registerSlashCommands() {
	urlOpt := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "url",
		Description: "URL of the TDF document",
		Required:    true,
	}
	broadcastOpt := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        "broadcast",
		Description: "Share with the rest of the channel instead of only to you (default is false)",
		Required:    false,
	}

	tdfCmd := &discordgo.ApplicationCommand{
		Name:        string(TdfCmd),
		Description: "Tournament document commands; try /tdf help to start",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(TdfHelpCmd),
				Description: "Show usage for tdf",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(TdfAboutCmd),
				Description: "Show information about pokemon-tdftool",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(TdfCheckCmd),
				Description: "Check whether a TDF document is compatible",
				Options: []*discordgo.ApplicationCommandOption{
					urlOpt,
					broadcastOpt,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(TdfRosterCmd),
				Description: "Show the player roster of a TDF document",
				Options: []*discordgo.ApplicationCommandOption{
					urlOpt,
					broadcastOpt,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(TdfStandingsCmd),
				Description: "Show current standings of a TDF document",
				Options: []*discordgo.ApplicationCommandOption{
					urlOpt,
					broadcastOpt,
				},
			},
		},
	}

	if tdfCmdId == "" {
		cmd, err := client.ApplicationCommandCreate(botAppId, "", tdfCmd)
		if err != nil {
			log.Printf("tdfbot.reg: failed to register %v: %v", tdfCmd.Name,
				err)
			return
		}

		log.Printf("tdfbot.reg: registered %v(cmdID:%v)", cmd.Name, cmd.ID)
	} else {
		cmd, err := client.ApplicationCommandEdit(botAppId, "", tdfCmdId, tdfCmd)
		if err != nil {
			log.Printf("tdfbot.reg: failed to update %v: %v", tdfCmd.Name,
				err)
			return
		}

		log.Printf("tdfbot.reg: updated %v(cmdID:%v)", cmd.Name, cmd.ID)
	}
}

func main() {
	go registerSlashCommands()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	log.Printf("tdfbot.main: starting server on %v:8080", hostname)

	http.HandleFunc("/DiscordBot/Interaction", interactionHandler)
	if err := http.ListenAndServe(":8080", nil); err != nil {
		log.Fatalf("tdfbot.main: Serve failed: %v", err)
	}

	log.Printf("tdfbot.main: exiting")
}
