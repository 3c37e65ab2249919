package sqlinline

const QCreateDonationsTable = `--sql d89fcc3c-ddd7-4ef4-b898-9a1fbfc84d94
create table if not exists donations (
  id bigserial primary key,
  transaction_id text not null,
  amount_cents bigint not null check (amount_cents > 0),
  donor_name text not null default '',
  donor_email text not null default '',
  button_id text not null default '',
  created_at timestamptz not null default now()
);
`

const QCreateDonationsTxIndex = `--sql 2568f75a-f2ae-4587-85c8-0e969ee4978e
create unique index if not exists donations_transaction_id_key
  on donations (transaction_id);
`

const QCreateSettingsTable = `--sql 8c0fc4cd-1a43-49b8-9ce1-a6452d9ee14f
create table if not exists settings (
  key text primary key,
  value text not null,
  updated_at timestamptz not null default now()
);
`
