package cli

const asciiLogo = `
  _  _ _         _      ___ _ _
 | \| (_)_ _  _ | |__ _| __(_) |___ ___
 | .' | | ' \| || / _' | _|| | / -_|_-<
 |_|\_|_|_||_|\__/\__,_|_| |_|_\___/__/`
