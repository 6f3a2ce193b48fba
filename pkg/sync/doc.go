/*
The sync package implements logloader's sync algorithm. It mirrors the logs
stored on the flight controller into a local directory, and relays completed
local logs to the remote archive.

There are three types of logs:
 1. Remote logs -- LogEntries listed by the flight controller.
 2. Local logs -- Files in the logs directory named after the creation time of
    the remote log they were downloaded from, e.g. `2024-05-30T04:56:06Z.ulg`.
 3. Delivered logs -- Local logs whose path has been recorded in the ledger
    after a successful upload.

Two loops run concurrently. The download loop reconciles the remote logs
against the local logs and downloads the ones that are missing or
incomplete. The upload loop uploads every local log that isn't in the ledger
and isn't currently being downloaded.

The loops only share three pieces of state: the ledger, the InFlight
descriptor of the current download, and the shutdown signal. Both loops are
suspended while the vehicle is armed.
*/
package sync
